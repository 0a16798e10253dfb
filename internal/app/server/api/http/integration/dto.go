package integration

import (
	"fintrack/internal/domain/credential"
	"fintrack/internal/integration/trading212"
)

// EnvelopePayload is the wire form of an encrypted credential for the
// import path. []byte fields travel as base64 strings in JSON.
type EnvelopePayload struct {
	Ciphertext []byte `json:"ciphertext" doc:"Encrypted secret, base64"`
	Salt       []byte `json:"salt" doc:"KDF salt, base64"`
	IV         []byte `json:"iv" doc:"AES-GCM nonce, base64"`
	AuthTag    []byte `json:"auth_tag" doc:"AES-GCM tag, base64"`
	Iterations int    `json:"iterations" doc:"KDF iteration count used at encryption time"`
}

// SecretRequest carries either a plaintext secret the server encrypts
// or a previously produced envelope.
type SecretRequest struct {
	Kind     string           `json:"kind" enum:"plaintext,envelope" doc:"Input kind"`
	Secret   string           `json:"secret,omitempty" doc:"Plaintext API key, required for kind=plaintext"`
	Envelope *EnvelopePayload `json:"envelope,omitempty" doc:"Encrypted envelope, required for kind=envelope"`
}

func (r SecretRequest) toInput() credential.SecretInput {
	in := credential.SecretInput{
		Kind:      r.Kind,
		Plaintext: r.Secret,
	}
	if r.Envelope != nil {
		in.Envelope = credential.Envelope{
			Ciphertext: r.Envelope.Ciphertext,
			Salt:       r.Envelope.Salt,
			IV:         r.Envelope.IV,
			AuthTag:    r.Envelope.AuthTag,
			Iterations: r.Envelope.Iterations,
		}
	}
	return in
}

type connectInput struct {
	Name string `path:"name" maxLength:"64" doc:"Integration name, e.g. trading212"`
	Body SecretRequest
}

type connectOutput struct {
	Body StatusResponse
}

type rotateInput struct {
	Name string `path:"name" maxLength:"64" doc:"Integration name"`
	Body SecretRequest
}

type rotateOutput struct {
	Body StatusResponse
}

type disconnectInput struct {
	Name string `path:"name" maxLength:"64" doc:"Integration name"`
}

type disconnectOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Integrations []credential.Integration `json:"integrations"`
}

type portfolioInput struct {
	Name string `path:"name" maxLength:"64" doc:"Integration name"`
}

type portfolioOutput struct {
	Body PortfolioResponse
}

type PortfolioResponse struct {
	Positions []trading212.Position `json:"positions"`
}
