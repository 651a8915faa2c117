package flightquota

import "strings"

// ParseGCSPath splits "gs://bucket/some/object" into its bucket and object. The bool
// is false for anything that is not a Cloud Storage path.
func ParseGCSPath(path string) (bucket, object string, ok bool) {
	if !strings.HasPrefix(path, "gs://") { return "","",false }
	rest := strings.TrimPrefix(path, "gs://")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" { return "","",false }
	if len(parts) == 1 { return parts[0], "", true }
	return parts[0], parts[1], true
}
