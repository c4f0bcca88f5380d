package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// genjwks generates an ES256 keypair for signing session tokens.
// The private key stays with the token issuer; the public set is served at JWKS_URL.
//
// Usage:
//
//	go run ./cmd/genjwks -kid agora-1 -out jwks.json
func main() {
	kid := flag.String("kid", "agora-signing-key", "key id placed in the kid header of issued tokens")
	out := flag.String("out", "", "write the public key set to this file instead of stdout")
	flag.Parse()

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate private key: %v", err)
	}

	jwkKey, err := jwk.FromRaw(privateKey)
	if err != nil {
		log.Fatalf("Failed to create JWK from private key: %v", err)
	}
	for k, v := range map[string]interface{}{
		jwk.KeyIDKey:     *kid,
		jwk.AlgorithmKey: "ES256",
		jwk.KeyUsageKey:  "sig",
	} {
		if err := jwkKey.Set(k, v); err != nil {
			log.Fatalf("Failed to set %s: %v", k, err)
		}
	}

	publicKey, err := jwk.PublicKeyOf(jwkKey)
	if err != nil {
		log.Fatalf("Failed to derive public key: %v", err)
	}
	set := jwk.NewSet()
	if err := set.AddKey(publicKey); err != nil {
		log.Fatalf("Failed to build key set: %v", err)
	}

	privateJSON, err := json.MarshalIndent(jwkKey, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal private JWK: %v", err)
	}
	setJSON, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal key set: %v", err)
	}

	fmt.Fprintln(os.Stderr, "Private signing key (keep secret, give only to the token issuer):")
	fmt.Fprintln(os.Stderr, string(privateJSON))

	if *out == "" {
		fmt.Println(string(setJSON))
		return
	}
	if err := os.WriteFile(*out, setJSON, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "Public key set written to %s\n", *out)
}
