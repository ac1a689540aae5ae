package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: Input{
			Encoding: "utf-8",
		},
		Cache: Cache{
			NormalizerSize: 0,
		},
		Output: Output{
			Format: "text",
		},
		Logging: Logging{
			Level: "ERROR",
		},
		Server: Server{
			Bind:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 30,
		},
	}
}
