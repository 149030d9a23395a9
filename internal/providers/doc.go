// Package providers implements the Generator interface for each supported
// text-generation backend.
//
// Supported providers: Claude (Anthropic messages API) and OpenAI (chat
// completions API). The two differ only in authentication headers, request
// payload shape, and where the generated text sits in the response.
//
// Requests are synchronous and single-attempt: any transport failure,
// non-success status, or unusable response is returned to the caller, which
// terminates the program. HTTP clients are held in a struct field so tests
// can redirect calls to local httptest servers.
//
// Use [New] to obtain a Generator from resolved configuration.
package providers
