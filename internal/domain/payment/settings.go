package payment

type Mode string

const (
	ModeSandbox Mode = "sandbox"
	ModeLive    Mode = "live"
)

// Credentials are the keys and endpoint for one gateway mode. They never leave configuration.
type Credentials struct {
	Mode      Mode
	PublicKey string
	SecretKey string
	Endpoint  string
}

// Complete reports whether both halves of the key pair are present.
func (c Credentials) Complete() bool {
	return c.PublicKey != "" && c.SecretKey != ""
}

type Settings struct {
	Enabled     bool
	Title       string
	Description string
	Sandbox     bool

	TestPublicKey string
	TestSecretKey string
	LivePublicKey string
	LiveSecretKey string

	SandboxURL string
	LiveURL    string
}

// Credentials selects the sandbox or live key pair by the sandbox flag.
func (s Settings) Credentials() Credentials {
	if s.Sandbox {
		return Credentials{
			Mode:      ModeSandbox,
			PublicKey: s.TestPublicKey,
			SecretKey: s.TestSecretKey,
			Endpoint:  s.SandboxURL,
		}
	}
	return Credentials{
		Mode:      ModeLive,
		PublicKey: s.LivePublicKey,
		SecretKey: s.LiveSecretKey,
		Endpoint:  s.LiveURL,
	}
}
