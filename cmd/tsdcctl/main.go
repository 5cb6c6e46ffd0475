// tsdcctl manages the wallets of a local TSDC wallet store.
// Usage: go run ./cmd/tsdcctl <list|create|import|activate|balance|send|reveal> [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/AlexZinkM/tsdc-wallet/internal/app"
	"github.com/AlexZinkM/tsdc-wallet/internal/common"
	"github.com/AlexZinkM/tsdc-wallet/internal/config"
	"github.com/AlexZinkM/tsdc-wallet/internal/logging"
	"github.com/AlexZinkM/tsdc-wallet/internal/wallet"
	"github.com/AlexZinkM/tsdc-wallet/solana"
)

const usage = `usage: tsdcctl <command> [flags]

commands:
  list                          list wallets
  create -name NAME             create a wallet
  import -name NAME             import a wallet from a private key
  activate ID                   switch the active wallet
  balance                       fetch the active wallet balance
  send -to ADDRESS -amount N    send TSDC from the active wallet
  reveal ID                     print the private key of a wallet
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Get()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "list":
		err = list(store)
	case "create":
		err = create(ctx, store, args)
	case "import":
		err = importWallet(ctx, store, args)
	case "activate":
		err = activate(ctx, store, args)
	case "balance":
		err = balance(ctx, store)
	case "send":
		err = send(ctx, store, args)
	case "reveal":
		err = reveal(store, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func list(store *wallet.Store) error {
	snap := store.Snapshot()
	if len(snap.Wallets) == 0 {
		fmt.Println("no wallets")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tADDRESS")
	for _, rec := range snap.Wallets {
		mark := ""
		if rec.ID == snap.ActiveID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, rec.ID, rec.Name, rec.PublicAddress)
	}
	return tw.Flush()
}

func create(ctx context.Context, store *wallet.Store, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "wallet name")
	fs.Parse(args)

	password, err := newPassword()
	if err != nil {
		return err
	}

	rec, err := store.Create(ctx, *name, password)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s)\naddress: %s\n", rec.Name, rec.ID, rec.PublicAddress)
	return nil
}

func importWallet(ctx context.Context, store *wallet.Store, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	name := fs.String("name", "", "wallet name")
	fs.Parse(args)

	key, err := config.ReadPassword("Private key: ")
	if err != nil {
		return err
	}
	defer clear(key)

	password, err := newPassword()
	if err != nil {
		return err
	}

	rec, err := store.Import(ctx, *name, string(key), password)
	if err != nil {
		return err
	}
	fmt.Printf("imported %s (%s)\naddress: %s\n", rec.Name, rec.ID, rec.PublicAddress)
	return nil
}

func activate(ctx context.Context, store *wallet.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("activate takes exactly one wallet id")
	}

	ok, err := store.Activate(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", wallet.ErrNotFound, args[0])
	}
	printBalance(store)
	return nil
}

func balance(ctx context.Context, store *wallet.Store) error {
	if _, err := store.RefreshBalance(ctx); err != nil {
		return err
	}
	printBalance(store)
	return nil
}

func printBalance(store *wallet.Store) {
	rec, ok := store.Active()
	if !ok {
		fmt.Println("no active wallet")
		return
	}
	b := store.Balance()
	if b == nil {
		fmt.Printf("%s: balance unknown\n", rec.Name)
		return
	}
	fmt.Printf("%s: %s\n", rec.Name, common.DisplayAmount(*b))
}

func send(ctx context.Context, store *wallet.Store, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "recipient address")
	rawAmount := fs.String("amount", "", "amount of TSDC")
	fs.Parse(args)

	if !solana.IsValidAddress(*to) {
		return fmt.Errorf("%w: invalid Solana address %q", wallet.ErrValidation, *to)
	}
	amount, err := common.ParseAmount(*rawAmount)
	if err != nil {
		return fmt.Errorf("%w: %v", wallet.ErrValidation, err)
	}

	// a fresh store has no balance yet
	if store.Balance() == nil {
		if _, err := store.RefreshBalance(ctx); err != nil {
			return err
		}
	}

	txID, err := store.SendTransaction(ctx, *to, amount)
	if err != nil {
		return err
	}
	fmt.Println("tx:", txID)
	printBalance(store)
	return nil
}

func reveal(store *wallet.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("reveal takes exactly one wallet id")
	}

	password, err := config.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	defer clear(password)

	secret, err := store.RevealSecret(args[0], string(password))
	if err != nil {
		return err
	}
	defer clear(secret)

	fmt.Println(string(secret))
	return nil
}

// newPassword asks for a password twice
func newPassword() (string, error) {
	first, err := config.ReadPassword("Password: ")
	if err != nil {
		return "", err
	}
	defer clear(first)

	second, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		return "", err
	}
	defer clear(second)

	if string(first) != string(second) {
		return "", fmt.Errorf("%w: passwords do not match", wallet.ErrValidation)
	}
	return string(first), nil
}
