package stdlib

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blake2b"
)

// HexDigest hashes data with a fresh h and returns the hex encoding.
func HexDigest(h hash.Hash, data []byte) string {
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func HMACSHA256(key, message []byte) string {
	return HexDigest(hmac.New(sha256.New, key), message)
}

type Hashes struct {
	MD5     string `json:"md5" yaml:"md5"`
	SHA1    string `json:"sha1" yaml:"sha1"`
	SHA256  string `json:"sha256" yaml:"sha256"`
	SHA512  string `json:"sha512" yaml:"sha512"`
	BLAKE2b string `json:"blake2b" yaml:"blake2b"`
}

type Base64Result struct {
	Encoded string `json:"encoded" yaml:"encoded"`
	Decoded string `json:"decoded" yaml:"decoded"`
}

type PasswordResult struct {
	Hash          string `json:"hash" yaml:"hash"`
	Matches       bool   `json:"matches" yaml:"matches"`
	WrongPassword bool   `json:"wrong_password" yaml:"wrong_password"`
}

type TokenResult struct {
	Token   string `json:"token" yaml:"token"`
	Subject string `json:"subject" yaml:"subject"`
	Valid   bool   `json:"valid" yaml:"valid"`
}

type HashingResult struct {
	Hashes      Hashes         `json:"hashes" yaml:"hashes"`
	Incremental string         `json:"incremental" yaml:"incremental"`
	FileHash    string         `json:"file_hash" yaml:"file_hash"`
	HMAC        string         `json:"hmac" yaml:"hmac"`
	Base64      Base64Result   `json:"base64" yaml:"base64"`
	Password    PasswordResult `json:"password" yaml:"password"`
	JWT         TokenResult    `json:"jwt" yaml:"jwt"`
}

// SignToken issues an HS256 token for subject that expires after ttl.
func SignToken(key []byte, subject string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// VerifyToken checks signature and expiry and returns the subject.
func VerifyToken(key []byte, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func Hashing() (HashingResult, error) {
	var r HashingResult
	data := []byte("Hello, Python!")

	b2, err := blake2b.New512(nil)
	if err != nil {
		return r, err
	}
	r.Hashes = Hashes{
		MD5:     HexDigest(md5.New(), data),
		SHA1:    HexDigest(sha1.New(), data),
		SHA256:  HexDigest(sha256.New(), data),
		SHA512:  HexDigest(sha512.New(), data),
		BLAKE2b: HexDigest(b2, data),
	}

	h := sha256.New()
	h.Write([]byte("Hello, "))
	h.Write([]byte("Python!"))
	r.Incremental = hex.EncodeToString(h.Sum(nil))

	r.FileHash = HexDigest(sha256.New(), []byte("File content to hash"))
	r.HMAC = HMACSHA256([]byte("secret_key"), []byte("Important message"))

	encoded := base64.StdEncoding.EncodeToString(data)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return r, err
	}
	r.Base64 = Base64Result{Encoded: encoded, Decoded: string(decoded)}

	pw := []byte("correct horse battery staple")
	hashed, err := bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	if err != nil {
		return r, err
	}
	r.Password = PasswordResult{
		Hash:          string(hashed),
		Matches:       bcrypt.CompareHashAndPassword(hashed, pw) == nil,
		WrongPassword: bcrypt.CompareHashAndPassword(hashed, []byte("wrong")) == nil,
	}

	key := []byte("secret_key")
	token, err := SignToken(key, "alice", time.Now(), time.Hour)
	if err != nil {
		return r, err
	}
	subject, err := VerifyToken(key, token)
	r.JWT = TokenResult{Token: token, Subject: subject, Valid: err == nil}

	return r, nil
}
