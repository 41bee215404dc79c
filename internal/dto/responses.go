package dto

// WelcomeResponse is the payload served at the root path.
type WelcomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse describes the payload returned by the /health probe endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// InfoResponse reports the runtime and deployment environment.
// RuntimeVersion keeps the python_version key existing clients read.
type InfoResponse struct {
	RuntimeVersion string `json:"python_version"`
	Hostname       string `json:"hostname"`
	Environment    string `json:"environment"`
}
