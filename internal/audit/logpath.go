package audit

import (
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultNamePattern is the strftime pattern of auto-generated log names.
const DefaultNamePattern = "rename_log_%Y%m%d_%H%M%S.csv"

var defaultName = func() *strftime.Strftime {
	f, err := strftime.New(DefaultNamePattern)
	if err != nil {
		panic(err)
	}
	return f
}()

// DefaultPath returns the auto-generated log path inside dir for a run
// started at now, e.g. dir/rename_log_20261018_142501.csv.
func DefaultPath(dir string, now time.Time) string {
	return filepath.Join(dir, defaultName.FormatString(now))
}
