package main

import (
	"fmt"
	"os"

	"iter"
)

func collectForCLI[T any](seq iter.Seq2[*T, error], marshal func(*T) ([]byte, error)) ([][]byte, error) {
	var (
		results [][]byte
		iterErr error
	)

	seq(func(value *T, err error) bool {
		if err != nil {
			iterErr = err
			return false
		}
		data, err := marshal(value)
		if err != nil {
			iterErr = err
			return false
		}
		results = append(results, data)
		return true
	})

	if iterErr != nil {
		return nil, iterErr
	}
	return results, nil
}

func printJSONArray(entries [][]byte) error {
	if _, err := fmt.Fprintln(os.Stdout, "["); err != nil {
		return err
	}
	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(os.Stdout, ","); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(os.Stdout, string(entry)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(os.Stdout, "]")
	return err
}
