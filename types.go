package listclean

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/listclean/listclean-go/internal/api"
	"github.com/listclean/listclean-go/internal/apierrors"
)

// MaxBatchSize is the largest number of addresses accepted by
// VerifyEmailBatch.
const MaxBatchSize = 3000

// Response is a decoded JSON object returned by the API, untouched.
// Numbers are json.Number values.
type Response = map[string]any

// Payload is a decoded JSON value returned by a collection endpoint: a
// Response for an object or []any for an array.
type Payload = any

// StartUploadParams describes a CSV upload to start.
type StartUploadParams = api.StartUploadRequest

// ResultType names a download bucket.
type ResultType = api.ResultType

// Download buckets.
const (
	ResultClean   = api.ResultClean
	ResultDirty   = api.ResultDirty
	ResultUnknown = api.ResultUnknown
)

// ResultTypes lists the accepted download buckets.
var ResultTypes = []ResultType{ResultClean, ResultDirty, ResultUnknown}

// ParseResultType normalises s to lower case and checks it names a
// download bucket.
func ParseResultType(s string) (ResultType, error) {
	normalized := ResultType(strings.ToLower(s))
	for _, rt := range ResultTypes {
		if normalized == rt {
			return rt, nil
		}
	}

	names := make([]string, len(ResultTypes))
	for i, rt := range ResultTypes {
		names[i] = string(rt)
	}
	return "", apierrors.Invalid("type", "must be one of: %s", strings.Join(names, ", "))
}

// UploadIDFrom extracts data.upload_id from a StartUpload response.
func UploadIDFrom(resp Response) (int, bool) {
	data, ok := resp["data"].(map[string]any)
	if !ok {
		return 0, false
	}

	var id int
	switch v := data["upload_id"].(type) {
	case float64:
		id = int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		id = int(n)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		id = n
	default:
		return 0, false
	}

	if id <= 0 {
		return 0, false
	}
	return id, true
}
