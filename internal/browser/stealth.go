package browser

import (
	"math/rand"
	"time"
)

// RandomDuration returns a duration drawn uniformly from [min, max].
func RandomDuration(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

// HumanType types text one character at a time, pausing 50-150ms between
// keystrokes so the input timing looks like a person typing.
func HumanType(el Element, text string, pause func(time.Duration)) error {
	for _, c := range text {
		if err := el.Type(string(c)); err != nil {
			return err
		}
		pause(RandomDuration(50*time.Millisecond, 150*time.Millisecond))
	}
	return nil
}
