// Package gemini talks to the Generative Language API's generateContent
// endpoint over plain HTTPS.
package gemini
