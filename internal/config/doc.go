// Package config provides configuration management for the greeting server.
//
// Configuration is loaded from environment variables using the env package.
// Every value has a default, so the server starts on port 3000 with no
// environment set at all.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
