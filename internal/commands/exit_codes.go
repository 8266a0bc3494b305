package commands

const (
	ExitCodeUnknownError     = 1
	ExitCodeInvalidArguments = 2
	ExitCodeInvalidConfig    = 3
	ExitCodeRenderError      = 4
	ExitCodeOutputError      = 5
)
