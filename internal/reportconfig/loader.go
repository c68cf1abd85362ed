package reportconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file over Default and validates the result.
// Unknown fields fail immediately.
func Load(path string) (*Config, []byte, error) {
	return LoadOver(path, Default())
}

// LoadOver reads a YAML file over base; keys absent from the file keep
// base's values. base is not modified.
func LoadOver(path string, base *Config) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read report config: %w", err)
	}

	cfg, err := Decode(data, base)
	if err != nil {
		return nil, data, err
	}
	return cfg, data, nil
}

// Decode parses YAML bytes over a copy of base and validates the result
func Decode(data []byte, base *Config) (*Config, error) {
	cfg := base.Clone()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode report config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Hash generates SHA256 hash from Config (canonical JSON)
// struct 사용으로 해시 재현성 보장
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
