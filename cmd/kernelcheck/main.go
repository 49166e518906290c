// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command kernelcheck loads a JSON-described kernel-check scenario and runs
// it through the kernel library, printing the resulting KernelProof or
// RuleError. It owns no consensus logic of its own; it is purely a driver
// over kernel.CheckProofOfStake, the same relationship btcd's cmd/btcctl
// has to the blockchain package.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/dmitry9888/particl-core/kernel"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "kernelcheck",
		Usage: "inspect proof-of-stake kernel checks against a JSON scenario",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "run check_proof_of_stake against a scenario file",
				ArgsUsage: "<scenario.json>",
				Action:    runCheck,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kernelcheck:", err)
		os.Exit(1)
	}
}

func runCheck(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one scenario.json argument", 1)
	}

	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	var scenario scenarioFile
	if err := json.Unmarshal(data, &scenario); err != nil {
		return fmt.Errorf("decoding scenario: %w", err)
	}

	view, utxo, archive, params, verifier, pindexPrev, tx, err := scenario.build()
	if err != nil {
		return fmt.Errorf("building scenario: %w", err)
	}

	proof, checkErr := kernel.CheckProofOfStake(view, params, verifier, utxo, archive,
		pindexPrev, tx, scenario.BlockTime, scenario.Bits)

	return printResult(proof, checkErr)
}

func printResult(proof kernel.KernelProof, checkErr error) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if checkErr == nil {
		return enc.Encode(struct {
			Accepted    bool   `json:"accepted"`
			HashPOS     string `json:"hash_pos"`
			Target      string `json:"target"`
			KernelSpent bool   `json:"kernel_spent"`
		}{
			Accepted:    true,
			HashPOS:     proof.HashPOS.String(),
			Target:      proof.Target.String(),
			KernelSpent: proof.KernelSpent,
		})
	}

	ruleErr, ok := checkErr.(kernel.RuleError)
	if !ok {
		return enc.Encode(struct {
			Accepted bool   `json:"accepted"`
			Error    string `json:"error"`
		}{Error: checkErr.Error()})
	}

	return enc.Encode(struct {
		Accepted  bool   `json:"accepted"`
		ErrorCode string `json:"error_code"`
		DoSWeight int    `json:"dos_weight"`
		Message   string `json:"message"`
	}{
		ErrorCode: ruleErr.ErrorCode.String(),
		DoSWeight: ruleErr.DoSWeight,
		Message:   ruleErr.Description,
	})
}

// scenarioFile is the JSON shape kernelcheck reads: a chain snapshot plus a
// single candidate coinstake. It is deliberately flat and hex/string based
// rather than reusing the wire binary encoding, since a hand-editable test
// scenario is the whole point of the tool.
type scenarioFile struct {
	PindexPrev blockRefJSON      `json:"pindex_prev"`
	Chain      []blockRefJSON    `json:"chain"`
	Utxo       []coinJSON        `json:"utxo"`
	Spent      []spentCoinJSON   `json:"spent"`
	Params     paramsJSON        `json:"params"`
	Tx         coinStakeTxJSON   `json:"tx"`
	BlockTime  int64             `json:"block_time"`
	Bits       uint32            `json:"bits"`
}

type blockRefJSON struct {
	Height        int32  `json:"height"`
	Time          int64  `json:"time"`
	Bits          uint32 `json:"bits"`
	StakeModifier string `json:"stake_modifier"`
}

func (b blockRefJSON) toRef() (jsonBlockRef, error) {
	mod, err := hashFromHex(b.StakeModifier)
	if err != nil {
		return jsonBlockRef{}, err
	}
	return jsonBlockRef{height: b.Height, time: b.Time, bits: b.Bits, mod: mod}, nil
}

type jsonBlockRef struct {
	height int32
	time   int64
	bits   uint32
	mod    kernel.StakeModifier
}

func (r jsonBlockRef) Height() int32                      { return r.height }
func (r jsonBlockRef) Time() int64                         { return r.time }
func (r jsonBlockRef) Bits() uint32                        { return r.bits }
func (r jsonBlockRef) StakeModifier() kernel.StakeModifier { return r.mod }

type outpointJSON struct {
	Txid  string `json:"txid"`
	Index uint32 `json:"index"`
}

func (o outpointJSON) toOutPoint() (wire.OutPoint, error) {
	h, err := hashFromHex(o.Txid)
	if err != nil {
		return wire.OutPoint{}, err
	}
	return wire.OutPoint{Hash: h, Index: o.Index}, nil
}

type coinJSON struct {
	Outpoint outpointJSON `json:"outpoint"`
	Value    int64        `json:"value"`
	Script   string       `json:"script"`
	Height   int32        `json:"height"`
	Coinbase bool         `json:"coinbase"`
	Type     string       `json:"type"`
}

func (c coinJSON) toCoin() (kernel.Coin, error) {
	typ := kernel.CoinTypeStandard
	if c.Type == "data" {
		typ = kernel.CoinTypeData
	}
	return kernel.Coin{
		Value:    c.Value,
		Script:   []byte(c.Script),
		Height:   c.Height,
		Coinbase: c.Coinbase,
		Type:     typ,
	}, nil
}

type spentCoinJSON struct {
	Coin        coinJSON `json:"coin"`
	SpentHeight int32    `json:"spent_height"`
}

type paramsJSON struct {
	StakeMinConfirmations int32  `json:"stake_min_confirmations"`
	StakeTimestampMask    uint32 `json:"stake_timestamp_mask"`
	MaxReorgDepth         int32  `json:"max_reorg_depth"`
}

func (p paramsJSON) toParams() jsonChainParams {
	return jsonChainParams{
		minConf:  p.StakeMinConfirmations,
		mask:     p.StakeTimestampMask,
		maxReorg: p.MaxReorgDepth,
	}
}

type jsonChainParams struct {
	minConf  int32
	mask     uint32
	maxReorg int32
}

func (p jsonChainParams) StakeMinConfirmations() int32     { return p.minConf }
func (p jsonChainParams) StakeTimestampMask(int32) uint32  { return p.mask }
func (p jsonChainParams) MaxReorgDepth() int32             { return p.maxReorg }

type coinStakeTxJSON struct {
	KernelOutpoint outpointJSON   `json:"kernel_outpoint"`
	ExtraInputs    []outpointJSON `json:"extra_inputs"`
	Outputs        []txOutJSON    `json:"outputs"`
	IsCoinStakeOp  bool           `json:"is_coinstake_op"`
}

type txOutJSON struct {
	Value  int64  `json:"value"`
	Script string `json:"script"`
}

// passthroughVerifier always accepts script verification: kernelcheck's
// hand-editable JSON scenarios carry no signatures to check against, so
// exercising txscript's full interpreter is out of scope for this tool.
type passthroughVerifier struct {
	isCoinStakeOp bool
}

func (v passthroughVerifier) HasIsCoinStakeOp([]byte) bool { return v.isCoinStakeOp }
func (v passthroughVerifier) VerifyInput(*wire.MsgTx, int, []byte, int64, txscript.ScriptFlags) error {
	return nil
}

func hashFromHex(s string) (chainhash.Hash, error) {
	if s == "" {
		return chainhash.Hash{}, nil
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return *h, nil
}

func (s scenarioFile) build() (
	kernel.ChainView,
	kernel.UtxoSource,
	kernel.SpentCoinArchive,
	kernel.ChainParams,
	kernel.ScriptVerifier,
	kernel.BlockRef,
	kernel.CoinStakeTx,
	error,
) {
	view := make(jsonChainView, len(s.Chain))
	for _, b := range s.Chain {
		ref, err := b.toRef()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		view[ref.height] = ref
	}

	utxo := make(jsonUtxoSource, len(s.Utxo))
	for _, c := range s.Utxo {
		op, err := c.Outpoint.toOutPoint()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		coin, err := c.toCoin()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		utxo[op] = coin
	}

	archive := make(jsonSpentArchive, len(s.Spent))
	for _, sc := range s.Spent {
		op, err := sc.Coin.Outpoint.toOutPoint()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		coin, err := sc.Coin.toCoin()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		archive[op] = kernel.SpentCoin{Coin: coin, SpentHeight: sc.SpentHeight}
	}

	pindexPrevRef, err := s.PindexPrev.toRef()
	if err != nil {
		return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
	}

	kernelOp, err := s.Tx.KernelOutpoint.toOutPoint()
	if err != nil {
		return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
	}

	msgTx := wire.NewMsgTx(wire.TxVersion)
	msgTx.AddTxIn(wire.NewTxIn(&kernelOp, nil, nil))
	for _, in := range s.Tx.ExtraInputs {
		op, err := in.toOutPoint()
		if err != nil {
			return nil, nil, nil, nil, nil, nil, kernel.CoinStakeTx{}, err
		}
		msgTx.AddTxIn(wire.NewTxIn(&op, nil, nil))
	}
	msgTx.AddTxOut(wire.NewTxOut(0, nil)) // coinstake marker
	for _, out := range s.Tx.Outputs {
		msgTx.AddTxOut(wire.NewTxOut(out.Value, []byte(out.Script)))
	}

	return view, utxo, archive, s.Params.toParams(),
		passthroughVerifier{isCoinStakeOp: s.Tx.IsCoinStakeOp},
		pindexPrevRef, kernel.CoinStakeTx{Tx: msgTx}, nil
}

type jsonChainView map[int32]kernel.BlockRef

func (v jsonChainView) AncestorAt(height int32) (kernel.BlockRef, bool) {
	r, ok := v[height]
	return r, ok
}

type jsonUtxoSource map[wire.OutPoint]kernel.Coin

func (u jsonUtxoSource) Coin(op wire.OutPoint) (kernel.Coin, bool) {
	c, ok := u[op]
	return c, ok
}

type jsonSpentArchive map[wire.OutPoint]kernel.SpentCoin

func (a jsonSpentArchive) SpentCoin(op wire.OutPoint) (kernel.SpentCoin, bool) {
	c, ok := a[op]
	return c, ok
}
