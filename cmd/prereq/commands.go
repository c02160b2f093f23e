package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/config"
	"prereq-sol/internal/logic"
	"prereq-sol/internal/svc"
	"prereq-sol/internal/types"
	"prereq-sol/internal/wallet"
)

type command struct {
	name string
	help string
	run  func(ctx context.Context, c config.Config, args []string) error
}

var commands = []command{
	{"keygen", "generate a new dev wallet (-force to overwrite)", runKeygen},
	{"airdrop", "request devnet SOL for the dev wallet", runAirdrop},
	{"pubkey", "print the Turbin3 wallet address", runPubkey},
	{"transfer", "send transfer_lamports from the dev wallet to recipient", runTransfer},
	{"transfer-all", "send the whole dev wallet balance minus fee to recipient", runTransferAll},
	{"base58-to-wallet", "read a base58 private key from stdin, print the byte array", runBase58ToWallet},
	{"wallet-to-base58", "read a wallet byte array from stdin, print base58", runWalletToBase58},
	{"enroll", "invoke prereq complete with the Turbin3 wallet (-github)", runEnroll},
	{"update", "invoke prereq update with the Turbin3 wallet (-github)", runUpdate},
	{"status", "show the on-chain prereq record of the Turbin3 wallet", runStatus},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) (string, error) {
	fmt.Println(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printReceipt(r *logic.Receipt) {
	fmt.Println("Success! Check out your TX here:")
	fmt.Println(r.ExplorerURL)
}

func runKeygen(ctx context.Context, c config.Config, args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite an existing wallet file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := c.WalletConf.DevWallet
	kp := wallet.NewKeypair()
	err := wallet.Save(path, kp, *force)
	if errors.Is(err, wallet.ErrWalletExists) {
		fmt.Printf("Wallet file already exists at: %s\n", path)
		answer, rerr := readLine("Would you like to override it? (y/N):")
		if rerr != nil {
			return rerr
		}
		if !strings.EqualFold(answer, "y") {
			return fmt.Errorf("file at path %s isn't empty; choose another file path", path)
		}
		err = wallet.Save(path, kp, true)
	}
	if err != nil {
		return err
	}

	fmt.Printf("You've generated a new Solana wallet: %s\n", kp.PublicKey.ToBase58())
	fmt.Printf("Saved to: %s\n\n", path)
	fmt.Println("To save your wallet somewhere, copy and paste the following into a JSON file:")
	fmt.Println(wallet.FormatWalletBytes(kp.PrivateKey))
	return nil
}

func runAirdrop(ctx context.Context, c config.Config, args []string) error {
	kp, err := wallet.Load(c.WalletConf.DevWallet)
	if err != nil {
		return err
	}
	sc, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}

	r, err := logic.Airdrop(ctx, sc, wallet.Pubkey(kp), c.AirdropLamports)
	if err != nil {
		return err
	}
	printReceipt(r)
	return nil
}

func runPubkey(ctx context.Context, c config.Config, args []string) error {
	kp, err := wallet.Load(c.WalletConf.Turbin3Wallet)
	if err != nil {
		return err
	}
	fmt.Println(wallet.Pubkey(kp))
	return nil
}

func transferSetup(c config.Config) (*svc.ServiceContext, types.Pubkey, error) {
	to, err := types.TryPubkeyFromBase58(c.Recipient)
	if err != nil {
		return nil, types.Pubkey{}, fmt.Errorf("recipient: %w", err)
	}
	sc, err := svc.NewServiceContext(c)
	if err != nil {
		return nil, types.Pubkey{}, err
	}
	return sc, to, nil
}

func runTransfer(ctx context.Context, c config.Config, args []string) error {
	kp, err := wallet.Load(c.WalletConf.DevWallet)
	if err != nil {
		return err
	}
	sc, to, err := transferSetup(c)
	if err != nil {
		return err
	}

	r, err := logic.Transfer(ctx, sc, kp, to, c.TransferLamports)
	if err != nil {
		return err
	}
	printReceipt(r)
	return nil
}

func runTransferAll(ctx context.Context, c config.Config, args []string) error {
	kp, err := wallet.Load(c.WalletConf.DevWallet)
	if err != nil {
		return err
	}
	sc, to, err := transferSetup(c)
	if err != nil {
		return err
	}

	r, err := logic.TransferAll(ctx, sc, kp, to)
	if err != nil {
		return err
	}
	printReceipt(r)
	return nil
}

func runBase58ToWallet(ctx context.Context, c config.Config, args []string) error {
	line, err := readLine("Input your private key as base58:")
	if err != nil {
		return err
	}
	key, err := wallet.Base58ToWallet(line)
	if err != nil {
		return err
	}
	fmt.Println("Your wallet file is:")
	fmt.Println(wallet.FormatWalletBytes(key))
	return nil
}

func runWalletToBase58(ctx context.Context, c config.Config, args []string) error {
	line, err := readLine("Input your private key as a wallet file byte array:")
	if err != nil {
		return err
	}
	key, err := wallet.ParseWalletBytes(line)
	if err != nil {
		return err
	}
	fmt.Println("Your private key is:")
	fmt.Println(wallet.WalletToBase58(key))
	return nil
}

func githubFlag(name string, c config.Config, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	github := fs.String("github", c.Github, "GitHub username to record")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *github == "" {
		return "", errors.New("github username is required (config github or -github)")
	}
	return *github, nil
}

type invokeFunc func(ctx context.Context, sc *svc.ServiceContext, kp soltypes.Account, github []byte) (*logic.Receipt, error)

func runPrereq(ctx context.Context, name string, c config.Config, args []string, invoke invokeFunc) error {
	github, err := githubFlag(name, c, args)
	if err != nil {
		return err
	}
	kp, err := wallet.Load(c.WalletConf.Turbin3Wallet)
	if err != nil {
		return err
	}
	sc, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}

	r, err := invoke(ctx, sc, kp, []byte(github))
	if err != nil {
		return err
	}
	printReceipt(r)
	return nil
}

func runEnroll(ctx context.Context, c config.Config, args []string) error {
	return runPrereq(ctx, "enroll", c, args, logic.Enroll)
}

func runUpdate(ctx context.Context, c config.Config, args []string) error {
	return runPrereq(ctx, "update", c, args, logic.UpdateEnrollment)
}

func runStatus(ctx context.Context, c config.Config, args []string) error {
	kp, err := wallet.Load(c.WalletConf.Turbin3Wallet)
	if err != nil {
		return err
	}
	sc, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}

	account, addr, err := logic.EnrollmentStatus(ctx, sc, wallet.Pubkey(kp))
	if err != nil {
		return fmt.Errorf("prereq account %s: %w", addr.Address, err)
	}
	fmt.Printf("prereq account: %s (bump %d)\n", addr.Address, addr.Bump)
	fmt.Printf("github:         %s\n", account.Github)
	fmt.Printf("key:            %s\n", account.Key)
	return nil
}
