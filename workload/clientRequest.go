package workload

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// The outcome of one request completed by a client
type ClientRequest struct {
	Start        time.Time
	End          time.Time
	Success      bool
	ServerStatus string
	// Whether some node of the ensemble had been injected when the result arrived
	Injected bool
}

func (r ClientRequest) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Build the request record of a result reported at end.
//
// A JSON result is read for its "success" and "status" fields. Any other
// result is taken as the status reported by the server and counts as a success
// unless it is empty or starts with "error".
func ParseResult(result string, nanos int64, end time.Time, injected bool) ClientRequest {
	req := ClientRequest{
		Start:    end.Add(-time.Duration(nanos)),
		End:      end,
		Injected: injected,
	}
	trimmed := strings.TrimSpace(result)
	if gjson.Valid(trimmed) && strings.HasPrefix(trimmed, "{") {
		fields := gjson.GetMany(trimmed, "success", "status")
		req.Success = !fields[0].Exists() || fields[0].Bool()
		req.ServerStatus = fields[1].String()
		return req
	}
	req.ServerStatus = trimmed
	req.Success = trimmed != "" && !strings.HasPrefix(strings.ToLower(trimmed), "error")
	return req
}
