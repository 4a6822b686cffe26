/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hasher.go
Description: Hash and encoding transforms for Akaylee WordGen exports. Maps algorithm
names onto stdlib and x/crypto digests plus base64 encodings so wordlists can be
exported pre-hashed for lookup-table workflows.
*/

package export

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm names one supported transform.
type HashAlgorithm string

const (
	HashMD5       HashAlgorithm = "md5"
	HashSHA1      HashAlgorithm = "sha1"
	HashSHA224    HashAlgorithm = "sha224"
	HashSHA256    HashAlgorithm = "sha256"
	HashSHA384    HashAlgorithm = "sha384"
	HashSHA512    HashAlgorithm = "sha512"
	HashSHA3_256  HashAlgorithm = "sha3-256"
	HashSHA3_512  HashAlgorithm = "sha3-512"
	HashBlake2b   HashAlgorithm = "blake2b"
	HashBlake2s   HashAlgorithm = "blake2s"
	HashBase64    HashAlgorithm = "base64"
	HashBase64URL HashAlgorithm = "base64url"
)

// Algorithms lists every supported algorithm name.
func Algorithms() []string {
	return []string{
		string(HashMD5), string(HashSHA1), string(HashSHA224), string(HashSHA256),
		string(HashSHA384), string(HashSHA512), string(HashSHA3_256), string(HashSHA3_512),
		string(HashBlake2b), string(HashBlake2s), string(HashBase64), string(HashBase64URL),
	}
}

// Hasher transforms strings with one fixed algorithm. MD5 and SHA1 are
// included for compatibility with legacy lookup tables, not for
// security.
type Hasher struct {
	algorithm HashAlgorithm
	transform func([]byte) string
}

// NewHasher resolves an algorithm name.
func NewHasher(algorithm HashAlgorithm) (*Hasher, error) {
	transform, err := transformFor(algorithm)
	if err != nil {
		return nil, err
	}
	return &Hasher{algorithm: algorithm, transform: transform}, nil
}

func transformFor(algorithm HashAlgorithm) (func([]byte) string, error) {
	switch algorithm {
	case HashMD5:
		return func(b []byte) string { d := md5.Sum(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA1:
		return func(b []byte) string { d := sha1.Sum(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA224:
		return func(b []byte) string { d := sha256.Sum224(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA256:
		return func(b []byte) string { d := sha256.Sum256(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA384:
		return func(b []byte) string { d := sha512.Sum384(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA512:
		return func(b []byte) string { d := sha512.Sum512(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA3_256:
		return func(b []byte) string { d := sha3.Sum256(b); return hex.EncodeToString(d[:]) }, nil
	case HashSHA3_512:
		return func(b []byte) string { d := sha3.Sum512(b); return hex.EncodeToString(d[:]) }, nil
	case HashBlake2b:
		return func(b []byte) string { d := blake2b.Sum512(b); return hex.EncodeToString(d[:]) }, nil
	case HashBlake2s:
		return func(b []byte) string { d := blake2s.Sum256(b); return hex.EncodeToString(d[:]) }, nil
	case HashBase64:
		return func(b []byte) string { return base64.StdEncoding.EncodeToString(b) }, nil
	case HashBase64URL:
		return func(b []byte) string { return base64.URLEncoding.EncodeToString(b) }, nil
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
}

// Algorithm returns the configured algorithm name.
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// Hash transforms one string.
func (h *Hasher) Hash(text string) string {
	return h.transform([]byte(text))
}

// HashMany transforms a batch.
func (h *Hasher) HashMany(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = h.transform([]byte(t))
	}
	return out
}
