package version

import (
	"fmt"
	"runtime"
)

// Version is the SDK release version.
const Version = "1.0.0"

// UserAgent identifies the SDK in the User-Agent header of every request,
// e.g. "fmpdata-go/1.0.0 (go1.22.0)".
func UserAgent() string {
	return fmt.Sprintf("fmpdata-go/%s (%s)", Version, runtime.Version())
}
