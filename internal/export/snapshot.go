// Package export persists the cleaned, scored review table as a parquet
// snapshot so later runs and queries can skip the join and scoring stages.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/parquet-go/parquet-go"
)

// WriteSnapshot writes the records to a parquet file at path.
func WriteSnapshot(path string, records []dataset.Review) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[dataset.Review](file)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write snapshot rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) ([]dataset.Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat snapshot file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[dataset.Review](pf)
	defer reader.Close()

	var records []dataset.Review
	rows := make([]dataset.Review, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
		}
	}

	return records, nil
}
