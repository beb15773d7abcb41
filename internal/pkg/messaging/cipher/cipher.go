// Package cipher implements the symmetric message cipher: AES-256-CBC with
// PKCS#7 padding. Keys are 32 bytes, hex-encoded at the boundary. A fresh
// random IV is generated per message and prepended to the ciphertext, so
// encrypting the same plaintext twice yields different ciphertexts.
package cipher

import (
	"bytes"
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

const keySize = 32 // AES-256

// Encrypt encrypts plaintext with the hex-encoded 256-bit key and returns
// hex(iv || ciphertext).
func Encrypt(plaintext, hexKey string) (string, error) {
	key, err := decodeKey(hexKey)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid cipher key", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", apperrors.Unavailable("generate iv", err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv)
	stdcipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Any malformed input (bad hex, short payload,
// misaligned blocks, invalid padding) fails with DECRYPTION_FAILED rather
// than panicking or returning garbage.
func Decrypt(ciphertext, hexKey string) (string, error) {
	key, err := decodeKey(hexKey)
	if err != nil {
		return "", err
	}

	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", apperrors.DecryptionFailed("ciphertext is not valid hex")
	}
	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", apperrors.DecryptionFailed("ciphertext is truncated or misaligned")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid cipher key", err)
	}

	iv, body := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plain := make([]byte, len(body))
	stdcipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	unpadded, err := unpad(plain, aes.BlockSize)
	if err != nil {
		return "", apperrors.DecryptionFailed("invalid padding")
	}
	return string(unpadded), nil
}

func decodeKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != keySize {
		return nil, apperrors.InvalidArg("encryption key must be 32 bytes, hex-encoded")
	}
	return key, nil
}

// PKCS#7
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, apperrors.DecryptionFailed("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, apperrors.DecryptionFailed("invalid pad byte")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, apperrors.DecryptionFailed("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
