package config

import "testing"

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "portfolio",
		DBPassword: "secret",
		DBHost:     "localhost",
		DBPort:     "3306",
		DBName:     "portfolio",
	}
	want := "portfolio:secret@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "localhost", RedisPort: "6379"}
	if got := cfg.GetRedisAddr(); got != "localhost:6379" {
		t.Errorf("GetRedisAddr() = %q, want localhost:6379", got)
	}
}

func TestGetEnvDefaults(t *testing.T) {
	if got := getEnv("PORTFOLIO_TEST_UNSET_VAR", "fallback"); got != "fallback" {
		t.Errorf("getEnv for unset var = %q, want fallback", got)
	}
	t.Setenv("PORTFOLIO_TEST_SET_VAR", "value")
	if got := getEnv("PORTFOLIO_TEST_SET_VAR", "fallback"); got != "value" {
		t.Errorf("getEnv for set var = %q, want value", got)
	}
}
