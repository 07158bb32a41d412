package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RPC_HOST", "")
	t.Setenv("RPC_PORT", "")
	t.Setenv("DASHBOARD_PORT", "")
	t.Setenv("WALLET_NAME", "")
	t.Setenv("WALLET_HRP", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RPCHost != "127.0.0.1" {
		t.Errorf("RPCHost = %s want 127.0.0.1", cfg.RPCHost)
	}
	if cfg.RPCPort != 19443 {
		t.Errorf("RPCPort = %d want 19443", cfg.RPCPort)
	}
	if cfg.DashboardPort != 5000 {
		t.Errorf("DashboardPort = %d want 5000", cfg.DashboardPort)
	}
	if cfg.HRP != "crnrt" {
		t.Errorf("HRP = %s want crnrt", cfg.HRP)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("RPC_HOST", "10.0.0.5")
	t.Setenv("RPC_PORT", "8332")
	t.Setenv("DASHBOARD_PORT", "9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RPCHost != "10.0.0.5" {
		t.Errorf("RPCHost = %s want 10.0.0.5", cfg.RPCHost)
	}
	if cfg.RPCPort != 8332 {
		t.Errorf("RPCPort = %d want 8332", cfg.RPCPort)
	}
	if cfg.DashboardPort != 9000 {
		t.Errorf("DashboardPort = %d want 9000", cfg.DashboardPort)
	}
}
