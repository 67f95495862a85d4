package health

import "context"

type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// reports whether the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}
