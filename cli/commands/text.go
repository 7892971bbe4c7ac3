// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rcli 命令行子命令
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/33cn/rcli/common"
	"github.com/33cn/rcli/common/config"
	"github.com/33cn/rcli/common/crypto"
	"github.com/33cn/rcli/common/log"
	"github.com/33cn/rcli/system/crypto/symcipher"
	"github.com/33cn/rcli/types"
	"github.com/33cn/rcli/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	tlog = log.New("module", "cli.text")
	// 根命令 PersistentPreRunE 中加载的配置
	textCfg *types.Config
)

// stdinName 输入为标准输入
const stdinName = "-"

// TextCmd text command
func TextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Text sign, verify, encrypt and decrypt",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		TextSignCmd(),
		TextVerifyCmd(),
		KeyGenerateCmd(),
		SymKeyCmd(),
		TextEncryptCmd(),
		TextDecryptCmd(),
	)

	return cmd
}

// TextSignCmd sign text
func TextSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a text with a private/shared key and print the signature",
		RunE:  textSign,
	}
	addTextSignFlags(cmd)
	return cmd
}

func addTextSignFlags(cmd *cobra.Command) {
	addInputFlag(cmd)
	cmd.Flags().StringP("key", "k", "", "key file used to sign")
	cmd.MarkFlagRequired("key")
	addFormatFlag(cmd)
	addEncodingFlag(cmd)
}

func textSign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := getFormat(cmd, cfg)
	if err != nil {
		return err
	}
	enc, err := getEncoding(cmd, cfg)
	if err != nil {
		return err
	}
	key, err := getKey(cmd)
	if err != nil {
		return err
	}
	reader, closer, err := getReader(cmd)
	if err != nil {
		return err
	}
	defer closer()

	sig, err := crypto.Sign(reader, key, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), enc.Encode(sig))
	return nil
}

// TextVerifyCmd verify text signature
func TextVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a text signature, print true or false",
		RunE:  textVerify,
	}
	addTextVerifyFlags(cmd)
	return cmd
}

func addTextVerifyFlags(cmd *cobra.Command) {
	addInputFlag(cmd)
	cmd.Flags().StringP("key", "k", "", "key file used to verify")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("sig", "s", "", "encoded signature")
	cmd.MarkFlagRequired("sig")
	addFormatFlag(cmd)
	addEncodingFlag(cmd)
}

func textVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := getFormat(cmd, cfg)
	if err != nil {
		return err
	}
	enc, err := getEncoding(cmd, cfg)
	if err != nil {
		return err
	}
	sigStr, _ := cmd.Flags().GetString("sig")
	sig, err := enc.Decode(sigStr)
	if err != nil {
		return errors.Wrap(err, "decode signature")
	}
	key, err := getKey(cmd)
	if err != nil {
		return err
	}
	reader, closer, err := getReader(cmd)
	if err != nil {
		return err
	}
	defer closer()

	ok, err := crypto.Verify(reader, key, sig, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}

// KeyGenerateCmd generate sign keys
func KeyGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key set for the sign format and write it to a directory",
		RunE:  keyGenerate,
	}
	addKeyGenerateFlags(cmd)
	return cmd
}

func addKeyGenerateFlags(cmd *cobra.Command) {
	addFormatFlag(cmd)
	addOutputFlag(cmd)
}

func keyGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := getFormat(cmd, cfg)
	if err != nil {
		return err
	}
	dir, err := getOutput(cmd, cfg)
	if err != nil {
		return err
	}
	keys, err := crypto.GenerateKeys(format)
	if err != nil {
		return err
	}
	for _, f := range keys.Files() {
		if err := writeKeyFile(dir, f); err != nil {
			return err
		}
	}
	return nil
}

// SymKeyCmd generate envelope key
func SymKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symkey",
		Short: "Generate a key for text encrypt/decrypt",
		RunE:  symKey,
	}
	addOutputFlag(cmd)
	return cmd
}

func symKey(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, err := getOutput(cmd, cfg)
	if err != nil {
		return err
	}
	key, err := symcipher.GenerateSymKey()
	if err != nil {
		return err
	}
	return writeKeyFile(dir, crypto.KeyFile{Name: symcipher.KeyName, Bytes: key})
}

// TextEncryptCmd encrypt text
func TextEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text and print the encoded envelope",
		RunE:  textEncrypt,
	}
	addTextCipherFlags(cmd)
	return cmd
}

func addTextCipherFlags(cmd *cobra.Command) {
	addInputFlag(cmd)
	cmd.Flags().StringP("key", "k", "", "32 bytes key file")
	cmd.MarkFlagRequired("key")
	addEncodingFlag(cmd)
}

func textEncrypt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc, err := getEncoding(cmd, cfg)
	if err != nil {
		return err
	}
	key, err := getKey(cmd)
	if err != nil {
		return err
	}
	reader, closer, err := getReader(cmd)
	if err != nil {
		return err
	}
	defer closer()

	envelope, err := symcipher.Encrypt(reader, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), enc.Encode(envelope))
	return nil
}

// TextDecryptCmd decrypt text
func TextDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an encoded envelope and print the text",
		RunE:  textDecrypt,
	}
	addTextCipherFlags(cmd)
	return cmd
}

func textDecrypt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc, err := getEncoding(cmd, cfg)
	if err != nil {
		return err
	}
	key, err := getKey(cmd)
	if err != nil {
		return err
	}
	content, err := getContent(cmd)
	if err != nil {
		return err
	}
	envelope, err := enc.Decode(string(content))
	if err != nil {
		return errors.Wrap(err, "decode envelope")
	}
	plain, err := symcipher.Decrypt(envelope, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(plain))
	return nil
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", stdinName, "input file, - for stdin")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "sign format(blake3, ed25519), default from config")
}

func addEncodingFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("encoding", "e", "", "text encoding(base64url, base64, hex, base58), default from config")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output directory, default from config")
}

// SetConfig 设置子命令使用的配置, nil 时子命令按 --conf 自行加载
func SetConfig(cfg *types.Config) {
	textCfg = cfg
}

// GetConfig 获取 SetConfig 设置的配置
func GetConfig() *types.Config {
	return textCfg
}

// loadConfig 优先使用已加载的配置, 单独使用子命令且没有 --conf 时使用默认配置
func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	if textCfg != nil {
		return textCfg, nil
	}
	path, _ := cmd.Flags().GetString("conf")
	return config.Init(path)
}

func getFormat(cmd *cobra.Command, cfg *types.Config) (crypto.SignFormat, error) {
	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		name = cfg.Text.Format
	}
	return crypto.ParseSignFormat(name)
}

func getEncoding(cmd *cobra.Command, cfg *types.Config) (common.Encoding, error) {
	name, _ := cmd.Flags().GetString("encoding")
	if name == "" {
		name = cfg.Text.Encoding
	}
	return common.ParseEncoding(name)
}

func getOutput(cmd *cobra.Command, cfg *types.Config) (string, error) {
	dir, _ := cmd.Flags().GetString("output")
	if dir == "" {
		dir = cfg.Text.KeyDir
	}
	if err := util.CheckPathExists(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func getKey(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("key")
	if err := util.CheckFileIsExist(path); err != nil {
		return nil, err
	}
	key, err := util.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(crypto.ErrIO, "%v", err)
	}
	return key, nil
}

// getReader 打开 --input, 返回的 closer 总是可以调用
func getReader(cmd *cobra.Command) (io.Reader, func(), error) {
	input, _ := cmd.Flags().GetString("input")
	if input == stdinName {
		return cmd.InOrStdin(), func() {}, nil
	}
	if err := util.CheckFileIsExist(input); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, errors.Wrapf(crypto.ErrIO, "open %s: %v", input, err)
	}
	return f, func() { f.Close() }, nil
}

func getContent(cmd *cobra.Command) ([]byte, error) {
	reader, closer, err := getReader(cmd)
	if err != nil {
		return nil, err
	}
	defer closer()
	return crypto.ReadContent(reader)
}

func writeKeyFile(dir string, f crypto.KeyFile) error {
	var perm os.FileMode = 0600
	if strings.HasSuffix(f.Name, ".pk") {
		perm = 0644
	}
	path, err := util.WriteFile(dir, f.Name, f.Bytes, perm)
	if err != nil {
		return errors.Wrapf(crypto.ErrIO, "%v", err)
	}
	tlog.Info("write key file", "path", path)
	return nil
}
