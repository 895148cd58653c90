package action

import (
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/google/uuid"
)

// Request is a fully built HTTP request plus the label used in logs. It is
// owned by the queue slot from Submit until it is executed.
type Request struct {
	ID          string
	Task        string
	Description string
	HTTP        *protocol.Request
}

func NewRequest(task, description string, req *protocol.Request) Request {
	return Request{
		ID:          uuid.NewString(),
		Task:        task,
		Description: description,
		HTTP:        req,
	}
}
