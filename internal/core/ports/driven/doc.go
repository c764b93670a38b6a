// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusSource: Loads the raw corpus from its input source
//   - Normaliser: Transforms one raw record into a canonical Post
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These degrade gracefully when nil:
//
//   - Assistant: LLM-backed chat over the analytics digest
//   - GraphRenderer: Renders the interaction graph for display
package driven
