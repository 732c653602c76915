package models

// TokenResponse carries the consent token returned by the native SDK host.
type TokenResponse struct {
	Token string `json:"token"`
}

// PlatformVersionResponse carries the OS version reported by the native SDK
// host.
type PlatformVersionResponse struct {
	Version string `json:"version"`
}

// AppendTokenURLRequest asks the native SDK to append a token to a URL. An
// empty Token lets the SDK use its current one.
type AppendTokenURLRequest struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}

// URLResponse carries a URL produced by the native SDK or by the bridge
// tokenizer.
type URLResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the JSON body of a failed bridge request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InjectionSettingsResponse tells the host when to inject the sync script and
// which user agent to set. UserAgent is empty where no override applies.
type InjectionSettingsResponse struct {
	InjectionTime string `json:"injectionTime"`
	UserAgent     string `json:"userAgent,omitempty"`
}
