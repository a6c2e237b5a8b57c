// Package tonapi provides a Go client SDK for the TON API (tonapi.io),
// a blockchain-indexing HTTP API for The Open Network.
//
// The client translates method calls into requests against the REST
// endpoints, decodes JSON responses into typed records, and maps HTTP
// error statuses onto sentinel errors usable with errors.Is. Rate-limited
// calls (HTTP 429) are retried automatically up to a configured number of
// attempts; every other failure is returned to the caller immediately.
//
// Basic usage:
//
//	client, err := tonapi.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	account, err := client.GetAccount(ctx, "EQBvW8Z5huBkMJYdnfAEM5JqTNkuWX3diqYENkWsIL0XggGG")
//	if errors.Is(err, tonapi.ErrNotFound) {
//	    // unknown account
//	}
//
//	fmt.Println("Balance:", account.Balance.ToTON())
package tonapi
