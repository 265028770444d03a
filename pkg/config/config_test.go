package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	os.Setenv("ticketCategoryId", "111")
	os.Setenv("supportRoleId", "222")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
		os.Unsetenv("ticketCategoryId")
		os.Unsetenv("supportRoleId")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}

	if config.TicketCategoryID != "111" {
		t.Errorf("TicketCategoryID = %v, want %v", config.TicketCategoryID, "111")
	}

	if config.SupportRoleID != "222" {
		t.Errorf("SupportRoleID = %v, want %v", config.SupportRoleID, "222")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	defer os.Unsetenv("enviroment")

	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList("123, 456,789,,")
	if len(got) != 3 {
		t.Fatalf("splitList() returned %d entries, want 3", len(got))
	}
	if got[0] != "123" || got[1] != "456" || got[2] != "789" {
		t.Errorf("splitList() = %v", got)
	}

	if splitList("") != nil {
		t.Error("splitList(\"\") should return nil")
	}
}

func TestIsDev(t *testing.T) {
	resetForTesting()
	os.Setenv("devUserIds", "100,200")
	defer os.Unsetenv("devUserIds")

	config, _ := Load()

	if !config.IsDev("100") {
		t.Error("IsDev(\"100\") should return true")
	}
	if config.IsDev("300") {
		t.Error("IsDev(\"300\") should return false")
	}
}
