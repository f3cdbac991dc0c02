package spectrogram

import (
	"errors"
	"fmt"
)

var errShortInput = errors.New("sample sequence shorter than requested windows")

func validateConfig(cfg Config) error {
	if cfg.Columns <= 0 {
		return fmt.Errorf("spectrogram: column count must be > 0: %d", cfg.Columns)
	}
	if cfg.Rows <= 0 {
		return fmt.Errorf("spectrogram: row count must be > 0: %d", cfg.Rows)
	}
	return nil
}
