package core

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Getwd tries to find the project root, the closest parent directory holding the go.mod file.
// go-test changes the working directory to the test package being run during tests,
// relative asset paths must be resolved from the root instead.
// Outside of the source tree (deployed binary) the working directory is returned.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}

// ParseIDs reads IDs from values, each holding one or more comma separated IDs: "1,2", "3".
// Blank items are skipped.
func ParseIDs(field string, values ...string) ([]int, error) {
	var ids []int
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = CleanString(item)
			if item == "" {
				continue
			}
			id, err := strconv.Atoi(item)
			if err != nil || id < 1 {
				return nil, NewValidationError(
					errors.Errorf("invalid %s ID %q", field, item),
					FieldError{Field: field, Error: "must be a list of positive integers"},
				)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
