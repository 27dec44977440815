package ghostty

const (
	systemLibrary = "kernel32.dll"
	systemSymbol  = "GetCurrentProcessId"
)
