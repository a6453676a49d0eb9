package domain

type ChatStatus string

const (
	StatusSuccess ChatStatus = "SUCCESS"
	StatusFail    ChatStatus = "FAIL"
)

type ChatResult struct {
	Status   ChatStatus `json:"status"`
	Messages string     `json:"messages"`

	// Err holds the typed cause of a FAIL result.
	Err error `json:"-"`
}

func (r ChatResult) OK() bool {
	return r.Status == StatusSuccess
}

func ChatSuccess(answer string) ChatResult {
	return ChatResult{Status: StatusSuccess, Messages: answer}
}

func ChatFailure(message string, err error) ChatResult {
	return ChatResult{Status: StatusFail, Messages: message, Err: err}
}
