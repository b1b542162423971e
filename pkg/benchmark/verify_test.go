package benchmark

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		results []*Result
		wantErr bool
	}{
		{
			"families agree",
			[]*Result{
				{Strategy: SequentialRead, Checksum: 1},
				{Strategy: RandomRead, Checksum: 2},
				{Strategy: SequentialMmap, Checksum: 1},
				{Strategy: RandomMmap, Checksum: 2},
			},
			false,
		},
		{
			"sequential family differs",
			[]*Result{
				{Strategy: SequentialRead, Checksum: 1},
				{Strategy: SequentialMmap, Checksum: 3},
			},
			true,
		},
		{
			"random family differs",
			[]*Result{
				{Strategy: RandomRead, Checksum: 2},
				{Strategy: RandomMmap, Checksum: 4},
			},
			true,
		},
		{
			"incomplete results are skipped",
			[]*Result{
				{Strategy: RandomRead, Checksum: 2},
				{Strategy: RandomMmap, Checksum: 4, Incomplete: true, Cause: errMapFailed},
			},
			false,
		},
		{
			"missing partner",
			[]*Result{
				{Strategy: SequentialRead, Checksum: 1},
			},
			false,
		},
		{"no results", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.results)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrChecksumMismatch))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyMismatchMessage(t *testing.T) {
	err := Verify([]*Result{
		{Strategy: SequentialRead, Checksum: 0xA},
		{Strategy: SequentialMmap, Checksum: 0xB},
	})

	assert.EqualError(t, err, "sequential-read=0x000000000000000A sequential-mmap=0x000000000000000B: checksum mismatch")
}

func TestAgree(t *testing.T) {
	assert.True(t, Agree(nil))
	assert.True(t, Agree([]*Result{{Checksum: 5}, {Checksum: 5}}))
	assert.False(t, Agree([]*Result{{Checksum: 5}, {Checksum: 6}}))
}

func TestStrategies(t *testing.T) {
	assert.Equal(t, []Strategy{SequentialRead, RandomRead, SequentialMmap, RandomMmap}, Strategies())

	names := []string{}
	labels := []string{}
	for _, strategy := range Strategies() {
		names = append(names, strategy.String())
		labels = append(labels, strategy.Label())
	}

	assert.Equal(t, []string{"sequential-read", "random-read", "sequential-mmap", "random-mmap"}, names)
	assert.Equal(t, []string{"Sequential read (read)", "Random read (read)", "Sequential read (mmap)", "Random read (mmap)"}, labels)

	assert.False(t, SequentialRead.Mapped())
	assert.True(t, RandomMmap.Mapped())
	assert.True(t, RandomRead.Random())
	assert.False(t, SequentialMmap.Random())
	assert.Equal(t, "strategy(7)", Strategy(7).String())
}

func TestResultThroughput(t *testing.T) {
	r := &Result{Bytes: 4 * 1024 * 1024, Elapsed: 2 * time.Second}
	assert.Equal(t, 2.0, r.Throughput())

	assert.Equal(t, 0.0, (&Result{Bytes: 10}).Throughput())
}

func TestPrepareDefaults(t *testing.T) {
	opts := prepareDefaults(&Options{BlockSize: 512})

	assert.Equal(t, 512, opts.BlockSize)
	assert.NotNil(t, opts.Table)
	assert.NotNil(t, opts.Now)
	assert.NotNil(t, opts.Open)
	assert.NotNil(t, opts.Mapper)
	assert.NotNil(t, opts.Logger)
	assert.Nil(t, opts.OnWindow)

	assert.Equal(t, DefaultBlockSize, prepareDefaults(nil).BlockSize)
	assert.Equal(t, DefaultBlockSize, prepareDefaults(&Options{}).BlockSize)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))

	err := Validate(&Options{BlockSize: -4})
	assert.True(t, IsValidationError(err))
	assert.EqualError(t, err, "BlockSize: block size must be greater than 0, got -4")
}
