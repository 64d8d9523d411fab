// Package providers groups the hosted model clients.
//
// Each sub-package embeds [github.com/germanamz/integra/pkg/modeladapter.ModelAdapter]
// and implements [github.com/germanamz/integra/pkg/generation.Generator]:
//   - [github.com/germanamz/integra/pkg/providers/huggingface]: Hugging Face Inference API text generation
package providers
