// Package royale provides a typed client for the community Clash Royale API.
//
// The API exposes player profiles, clans, tournaments, leaderboards and the
// game's static configuration data. This package wraps every endpoint in a
// typed method, validates inputs before any network activity, and folds all
// transport failures into one structured error carrying the HTTP status code.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the facade, one method per upstream resource
//   - Transport: the HTTP round-trip collaborator behind the facade,
//     replaceable for tests and alternative backends
//   - Requests: immutable parameter bundles with normalizing factories
//   - Models: value records mirroring the upstream JSON documents
//   - Errors: sentinel validation errors and structured failure types
//
// # Usage
//
// Create a client with the API base URL; a developer key is optional:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := royale.NewClient(
//		"https://api.royaleapi.com",
//		logger,
//		royale.WithDeveloperKey("your-key"),
//		royale.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	profile, err := client.GetProfileByTag(ctx, "#2PP")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Multi-parameter endpoints also accept pre-built request objects, so the
// two call forms below hit the transport identically:
//
//	req, _ := royale.NewProfileRequest("#2PP")
//	profile, err = client.GetProfile(ctx, req)
//
// # Validation
//
// Tags are normalized (leading '#' stripped, uppercased, O mapped to 0)
// before a request is built. An empty tag or tag list fails with
// ErrMissingTag / ErrMissingTags before the transport is ever invoked.
//
// # Error Handling
//
// Failed API calls surface as one of:
//
//   - ErrInvalidConfig, ErrMissingTag, ErrMissingTags: raised before any
//     network activity
//   - APIError: the upstream call failed with a status code
//   - TransportError: the failure carried no recognizable status code
//     (connection errors, malformed bodies); wraps the cause
//
// APIError includes helper methods for classification:
//
//	var apiErr *royale.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown tag
//	}
package royale
