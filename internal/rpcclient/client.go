// Package rpcclient implements a minimal JSON-RPC 1.0 client for the
// daemon's wallet RPC interface: enough to call getnewaddress,
// getaddressinfo and listdescriptors for the newaddress endpoint,
// nothing more.
package rpcclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rowbotony/croncoin-walletcore/internal/config"
)

// Client talks JSON-RPC to a single wallet on the daemon.
type Client struct {
	httpClient *http.Client
	url        string
	auth       string
}

// New builds a Client from config, resolving the auth credentials the
// same way the original dashboard did: explicit user/password first,
// falling back to the cookie file, falling back to a clearly-invalid
// placeholder so a misconfigured daemon fails loudly rather than
// silently.
func New(cfg *config.Config) *Client {
	walletPath := ""
	if cfg.WalletName != "" {
		walletPath = "/wallet/" + cfg.WalletName
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        fmt.Sprintf("http://%s:%d%s", cfg.RPCHost, cfg.RPCPort, walletPath),
		auth:       resolveAuth(cfg),
	}
}

func resolveAuth(cfg *config.Config) string {
	if cfg.RPCUser != "" && cfg.RPCPassword != "" {
		return cfg.RPCUser + ":" + cfg.RPCPassword
	}
	contents, err := os.ReadFile(cfg.RPCCookiePath)
	if err != nil {
		return "__cookie__:password"
	}
	return strings.TrimSpace(string(contents))
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call invokes method with params and unmarshals the result into out.
func (c *Client) Call(method string, params []any, out any) error {
	payload, err := json.Marshal(rpcRequest{JSONRPC: "1.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(splitAuth(c.auth))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rpc call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("rpc call %s: decoding response: %w", method, err)
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if out == nil || len(decoded.Result) == 0 {
		return nil
	}
	return json.Unmarshal(decoded.Result, out)
}

func splitAuth(auth string) (user, pass string) {
	parts := strings.SplitN(auth, ":", 2)
	if len(parts) != 2 {
		return auth, ""
	}
	return parts[0], parts[1]
}

// GetNewAddress requests a fresh receiving address from the daemon's
// currently loaded wallet.
func (c *Client) GetNewAddress() (string, error) {
	var address string
	if err := c.Call("getnewaddress", nil, &address); err != nil {
		return "", err
	}
	return address, nil
}

// AddressInfo is the subset of getaddressinfo's response this wallet
// core needs: the address's pubkey and, for HD wallets, its derivation
// path relative to the wallet's descriptor.
type AddressInfo struct {
	Pubkey    string `json:"pubkey"`
	HDKeyPath string `json:"hdkeypath"`
}

// GetAddressInfo looks up metadata for an address the wallet already
// knows about.
func (c *Client) GetAddressInfo(address string) (*AddressInfo, error) {
	var info AddressInfo
	if err := c.Call("getaddressinfo", []any{address}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

var descriptorTprvPattern = regexp.MustCompile(`^(?:sh\()?wpkh\((tprv[A-Za-z0-9]+)/`)

type descriptorEntry struct {
	Desc string `json:"desc"`
}

type listDescriptorsResult struct {
	Descriptors []descriptorEntry `json:"descriptors"`
}

// ErrMasterKeyNotFound is returned by GetMasterTprv when none of the
// wallet's descriptors embed a wpkh(tprv...) private key.
var ErrMasterKeyNotFound = errors.New("rpcclient: no tprv found in wallet descriptors")

// GetMasterTprv extracts the wallet's master extended private key from
// its private descriptor list, the same way the original dashboard's
// wallet/seed endpoint located it.
func (c *Client) GetMasterTprv() (string, error) {
	var result listDescriptorsResult
	if err := c.Call("listdescriptors", []any{true}, &result); err != nil {
		return "", err
	}
	for _, d := range result.Descriptors {
		if m := descriptorTprvPattern.FindStringSubmatch(d.Desc); m != nil {
			return m[1], nil
		}
	}
	return "", ErrMasterKeyNotFound
}
