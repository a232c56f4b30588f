package pipeline_test

import (
	"context"
	"strconv"
	"testing"
)

func createInputChan(t *testing.T, total int) chan string {
	t.Helper()

	inputChan := make(chan string)

	go func() {
		defer close(inputChan)

		for i := range total {
			inputChan <- "line " + strconv.Itoa(i)
		}
	}()

	return inputChan
}

func sendLines(total int) func(ctx context.Context, rootChan chan<- string) error {
	return func(ctx context.Context, rootChan chan<- string) error {
		for i := range total {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- "line " + strconv.Itoa(i):
			}
		}

		return nil
	}
}

func expectedLines(total int, transform func(string) string) []string {
	res := make([]string, total)
	for i := range total {
		res[i] = transform("line " + strconv.Itoa(i))
	}

	return res
}

func processOutputChan(t *testing.T, output <-chan string) (res []string) {
	t.Helper()

	for out := range output {
		res = append(res, out)
	}

	return res
}
