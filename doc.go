// Package listclean provides a Go client for the Listclean email
// verification and list-hygiene API.
//
// Every method performs a single HTTP round trip. Arguments are checked
// locally first; a rejected argument returns a *ValidationError before any
// request is sent. Non-2xx responses return an *APIError carrying the status
// code and the decoded error body.
//
// Basic usage:
//
//	client, err := listclean.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.VerifyEmail(ctx, "user@example.com")
//	if err != nil {
//	    var apiErr *listclean.APIError
//	    if errors.As(err, &apiErr) {
//	        log.Printf("status %d: %v", apiErr.StatusCode, apiErr.Body)
//	    }
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result["data"])
package listclean
