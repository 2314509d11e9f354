package eramvisuals

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LogFileName is the name of the run log within the output directory. It only holds the last run.
const LogFileName = "eram_visuals.log"

type runLog struct {
	*log.Logger
	ID   string
	file *os.File
}

func openRunLog(outputDir string) (*runLog, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}
	f, err := os.OpenFile(filepath.Join(outputDir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening run log")
	}
	rl := &runLog{
		Logger: log.New(f, "", log.LstdFlags|log.LUTC),
		ID:     uuid.NewString(),
		file:   f,
	}
	rl.Printf("run %s", rl.ID)
	return rl, nil
}

func (rl *runLog) Close() error {
	return rl.file.Close()
}
