//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"docstyle/internal/adapter/analyzer"
	"docstyle/internal/adapter/cache"
	"docstyle/internal/adapter/memstore"
	"docstyle/internal/adapter/report"
	"docstyle/internal/usecase"
)

var (
	source    *memstore.MemorySource
	tokenizer *analyzer.Tokenizer
	docCache  *cache.DocumentCache
	analyzeUC *usecase.AnalyzeUseCase
)

func init() {
	source = memstore.NewMemorySource()
	tokenizer = analyzer.NewTokenizer()
	docCache = cache.NewDocumentCache(64)
	analyzeUC = usecase.NewAnalyzeUseCase(source, tokenizer, analyzer.DefaultStopWords(), nil, false).
		WithCache(docCache)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("docstylePut", js.FuncOf(putDocument))
	js.Global().Set("docstyleDelete", js.FuncOf(deleteDocument))
	js.Global().Set("docstyleStopWords", js.FuncOf(setStopWords))
	js.Global().Set("docstyleStats", js.FuncOf(documentStats))
	js.Global().Set("docstyleAnalyze", js.FuncOf(analyzeDocuments))
	js.Global().Set("docstyleClear", js.FuncOf(clearDocuments))

	<-c
}

func putDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: docstylePut(name, content)")
	}
	source.Put(args[0].String(), args[1].String())
	return makeResult(map[string]interface{}{
		"success":   true,
		"documents": source.Names(),
		"cached":    docCache.Size(),
	})
}

func deleteDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docstyleDelete(name)")
	}
	if !source.Delete(args[0].String()) {
		return makeError("document not found: " + args[0].String())
	}
	return makeResult(map[string]interface{}{
		"success":   true,
		"documents": source.Names(),
	})
}

func setStopWords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docstyleStopWords(content)")
	}
	stops := analyzer.ParseStopWords(tokenizer, args[0].String())
	analyzeUC.SetStopWords(stops)
	return makeResult(map[string]interface{}{
		"success":   true,
		"stopWords": stops.Len(),
		"cached":    docCache.Size(),
	})
}

func documentStats(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docstyleStats(name, [maxSep])")
	}
	maxSep := 2
	if len(args) > 1 {
		maxSep = args[1].Int()
	}

	st, err := analyzeUC.Stats(args[0].String(), maxSep)
	if err != nil {
		return makeError("analysis failed: " + err.Error())
	}
	return encode(func(s *report.JSONSink) error { return s.WriteDocument(st) })
}

func analyzeDocuments(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: docstyleAnalyze(first, second, [maxSep])")
	}
	maxSep := 2
	if len(args) > 2 {
		maxSep = args[2].Int()
	}

	result, err := analyzeUC.Analyze(args[0].String(), args[1].String(), maxSep)
	if err != nil {
		return makeError("analysis failed: " + err.Error())
	}
	return encode(func(s *report.JSONSink) error { return s.WriteAnalysis(result) })
}

func clearDocuments(this js.Value, args []js.Value) interface{} {
	source.Clear()
	docCache.Invalidate()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func encode(write func(*report.JSONSink) error) interface{} {
	var buf strings.Builder
	if err := write(report.NewJSONSink(&buf)); err != nil {
		return makeError("encoding failed: " + err.Error())
	}
	return buf.String()
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
