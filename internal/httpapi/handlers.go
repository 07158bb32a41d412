// Package httpapi exposes the wallet-key stack's two HTTP endpoints:
// POST /api/wallet/generate (pure synthesis, no daemon involved) and
// GET /api/wallet/newaddress (a thin JSON-RPC passthrough to the
// daemon's wallet, re-deriving the leaf WIF when the daemon reports an
// HD key path). Every other route the original dashboard exposed
// (rich list, raw JSON-RPC passthrough, static file serving, mining,
// sending) is out of scope here.
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/rowbotony/croncoin-walletcore/internal/rpcclient"
	"github.com/rowbotony/croncoin-walletcore/internal/wallet"
)

// Handlers holds the dependencies the two endpoints need: an RPC client
// to the daemon, the default HRP/path, and a logger. It also holds the
// one process-wide cache the core's design explicitly allows outside
// the crypto stack: a memoized master tprv pulled from the wallet's
// descriptor list, invalidated explicitly rather than on a TTL.
type Handlers struct {
	rpc         *rpcclient.Client
	logger      *zap.Logger
	defaultHRP  string
	defaultPath string

	mu         sync.Mutex
	cachedTprv string
	haveTprv   bool
}

// New builds a Handlers using rpc for daemon calls.
func New(rpc *rpcclient.Client, defaultHRP, defaultPath string, logger *zap.Logger) *Handlers {
	return &Handlers{rpc: rpc, logger: logger, defaultHRP: defaultHRP, defaultPath: defaultPath}
}

// InvalidateMasterTprv drops the cached master tprv, forcing the next
// newaddress call to re-fetch it from the daemon. Useful after a wallet
// reload or descriptor rotation.
func (h *Handlers) InvalidateMasterTprv() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.haveTprv = false
	h.cachedTprv = ""
}

func (h *Handlers) masterTprv() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.haveTprv {
		return h.cachedTprv, nil
	}
	tprv, err := h.rpc.GetMasterTprv()
	if err != nil {
		return "", err
	}
	h.cachedTprv = tprv
	h.haveTprv = true
	return tprv, nil
}

type generateRequest struct {
	Passphrase  string `json:"passphrase"`
	Path        string `json:"path"`
	EntropyBits int    `json:"entropy_bits"`
}

type derivationStepResponse struct {
	Path string `json:"path"`
	Xprv string `json:"xprv"`
	Xpub string `json:"xpub"`
}

type generateResponse struct {
	EntropyHex      string                    `json:"entropy_hex"`
	EntropyBits     int                       `json:"entropy_bits"`
	Mnemonic        string                    `json:"mnemonic"`
	SeedHex         string                    `json:"seed_hex"`
	MasterXprv      string                    `json:"master_xprv"`
	MasterXpub      string                    `json:"master_xpub"`
	DerivationPath  string                    `json:"derivation_path"`
	DerivationChain []derivationStepResponse `json:"derivation_chain"`
	PrivateKeyWIF   string                    `json:"private_key_wif"`
	PublicKeyHex    string                    `json:"public_key_hex"`
	Address         string                    `json:"address"`
}

// Generate handles POST /api/wallet/generate.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{Path: h.defaultPath, EntropyBits: 128}
	if r.Body != nil {
		// A missing or empty body is not an error; every field has a default.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := wallet.Synthesize(wallet.Options{
		EntropyBits: req.EntropyBits,
		Passphrase:  req.Passphrase,
		Path:        req.Path,
		HRP:         h.defaultHRP,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	chain := make([]derivationStepResponse, len(result.DerivationChain))
	for i, step := range result.DerivationChain {
		chain[i] = derivationStepResponse{Path: step.Path, Xprv: step.Xprv, Xpub: step.Xpub}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		EntropyHex:      result.EntropyHex,
		EntropyBits:     result.EntropyBits,
		Mnemonic:        result.Mnemonic,
		SeedHex:         result.SeedHex,
		MasterXprv:      result.MasterXprv,
		MasterXpub:      result.MasterXpub,
		DerivationPath:  result.DerivationPath,
		DerivationChain: chain,
		PrivateKeyWIF:   result.PrivateKeyWIF,
		PublicKeyHex:    result.PublicKeyHex,
		Address:         result.Address,
	})
}

type newAddressResponse struct {
	Address string `json:"address"`
	Pubkey  string `json:"pubkey,omitempty"`
	Privkey string `json:"privkey,omitempty"`
}

// NewAddress handles GET /api/wallet/newaddress: it asks the daemon for
// a fresh address, looks up its metadata, and — best-effort, matching
// the original dashboard's behavior — re-derives the leaf WIF when the
// daemon reports an hdkeypath.
func (h *Handlers) NewAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.rpc.GetNewAddress()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp := newAddressResponse{Address: address}

	info, err := h.rpc.GetAddressInfo(address)
	if err == nil && info != nil {
		resp.Pubkey = info.Pubkey
		if info.HDKeyPath != "" {
			if tprv, tErr := h.masterTprv(); tErr == nil {
				if wif, dErr := wallet.DeriveWIF(tprv, info.HDKeyPath); dErr == nil {
					resp.Privkey = wif
				} else {
					h.logger.Warn("could not re-derive privkey for new address",
						zap.String("address", address), zap.Error(dErr))
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if walletErr, ok := err.(*wallet.Error); ok {
		switch walletErr.Kind {
		case wallet.InvalidParameter, wallet.InvalidEncoding, wallet.InvalidPath:
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
