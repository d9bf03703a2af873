package output_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/ui/output"
)

func TestProgress_Increment(t *testing.T) {
	p := output.NewProgress(2, "classes analysed")

	assert.Equal(t, "0/2 classes analysed", p.Current())

	line, err := p.Increment()
	require.NoError(t, err)
	assert.Equal(t, "1/2 classes analysed", line)

	line, err = p.Increment()
	require.NoError(t, err)
	assert.Equal(t, "2/2 classes analysed", line)
}

func TestProgress_IncrementPastTotal(t *testing.T) {
	p := output.NewProgress(1, "classes analysed")

	_, err := p.Increment()
	require.NoError(t, err)

	_, err = p.Increment()
	assert.True(t, errors.Is(err, output.ErrProgressExhausted))
}

func TestProgress_ConcurrentIncrements(t *testing.T) {
	const total = 64
	p := output.NewProgress(total, "done")

	var wg sync.WaitGroup
	for range total {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Increment()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "64/64 done", p.Current())
}
