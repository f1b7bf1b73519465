// Command simjoin exercises the whole purchase path end to end against a
// running API and a Stellar test network: connect a local-key wallet, pick an
// event, pay, and report the ticket.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/somewherelostt/KaizenX/internal/apiclient"
	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/purchase"
	"github.com/somewherelostt/KaizenX/internal/stellar"
	"github.com/somewherelostt/KaizenX/internal/wallet"
	"github.com/somewherelostt/KaizenX/internal/wallet/bridge"
	"github.com/somewherelostt/KaizenX/internal/wallet/walletstore"
)

func main() {
	apiURL := flag.String("api", "http://127.0.0.1:4000", "API base URL")
	eventID := flag.String("event", "", "event id to join (default: first listed)")
	email := flag.String("email", "", "login email (optional)")
	password := flag.String("password", "", "login password")
	seed := flag.String("seed", "", "wallet secret seed (default: random funded test account)")
	flag.Parse()

	cfg := config.LoadStellarConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gateway := stellar.NewGateway(cfg.HorizonURL, cfg.NetworkPassphrase, cfg.FriendbotURL)

	var (
		signer *bridge.LocalKey
		err    error
	)
	if *seed != "" {
		signer, err = bridge.NewLocalKey(*seed, gateway.NetworkPassphrase())
	} else {
		signer, err = bridge.NewRandomLocalKey(gateway.NetworkPassphrase())
	}
	if err != nil {
		log.Fatalf("wallet key: %v", err)
	}
	if *seed == "" {
		if err := gateway.FundTestAccount(ctx, signer.Address()); err != nil {
			log.Fatalf("friendbot funding: %v", err)
		}
		log.Printf("funded test account %s", signer.Address())
	}

	walletCfg := config.LoadWalletConfig()
	store, err := walletstore.NewFileStore(walletCfg.StateDir)
	if err != nil {
		log.Fatalf("wallet state dir: %v", err)
	}
	manager := wallet.NewManager(signer, gateway, store, wallet.Options{
		FreshnessWindow: walletCfg.FreshnessWindow,
		RestoreTimeout:  walletCfg.RestoreTimeout,
	})

	if err := manager.RestoreSession(ctx); err != nil {
		log.Fatalf("restore wallet session: %v", err)
	}
	if s := manager.Session(); s.Connected && s.Address != signer.Address() {
		// Persisted session belongs to a key this run does not hold.
		if err := manager.Disconnect(ctx); err != nil {
			log.Fatalf("discard stale wallet session: %v", err)
		}
	}
	if s := manager.Session(); s.Connected {
		log.Printf("restored session for %s", s.Address)
	} else if err := manager.Connect(ctx, wallet.ProviderFreighter); err != nil {
		log.Fatalf("connect wallet: %v", err)
	}
	session := manager.Session()
	log.Printf("connected %s balance=%s XLM", session.Address, session.Balance)

	client := apiclient.New(*apiURL)
	if *email != "" {
		if err := client.Login(ctx, *email, *password); err != nil {
			log.Fatalf("login: %v", err)
		}
	}

	id := *eventID
	if id == "" {
		events, err := client.ListEvents(ctx)
		if err != nil {
			log.Fatalf("list events: %v", err)
		}
		if len(events) == 0 {
			log.Fatal("no events in catalog")
		}
		id = events[0].ID
	}
	record, err := client.GetEvent(ctx, id)
	if err != nil {
		log.Fatalf("get event: %v", err)
	}
	log.Printf("joining event %q (%s)", record.Title, record.Price)

	flow := purchase.NewFlow(manager, signer, gateway)
	flow.Open(purchase.Event{
		Ref:       record.ID,
		Title:     record.Title,
		Price:     record.Price,
		Organizer: record.Organizer,
	})
	outcome, err := flow.Submit(ctx)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	attempt := flow.Attempt()
	switch outcome {
	case purchase.OutcomeSuccess:
		log.Printf("payment confirmed: tx=%s amount=%s", attempt.TxHash, attempt.Amount)
	case purchase.OutcomeNeedsWallet:
		log.Fatal("wallet session missing")
	default:
		log.Fatalf("payment failed: %s", attempt.FailMsg)
	}

	if *email != "" {
		err = client.RecordTicket(ctx, apiclient.TicketReceipt{
			EventID:      record.ID,
			BuyerAddress: session.Address,
			Amount:       attempt.Amount,
			TxHash:       attempt.TxHash,
		})
		if err != nil {
			log.Fatalf("record ticket: %v", err)
		}
		log.Println("ticket recorded")
	}

	log.Println("Done.")
}
