package console

const (
	CodeCreateGame uint8 = iota
	CodeFire
	CodeRender
	CodeEndGame
	CodeQuitGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Signal is the bare answer to a request whose code is not handled.
type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
