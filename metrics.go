package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeKeyword  = "keyword"
	outcomeFallback = "fallback"
)

var (
	responsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responder_responses_total",
			Help: "Responses served, by whether a keyword matched or a default was picked.",
		},
		[]string{"outcome"},
	)

	reloadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "responder_reloads_total",
		Help: "Number of times the response files were reloaded.",
	})
)

func init() {
	prometheus.MustRegister(responsesTotal, reloadsTotal)
}

// recordResponse counts one served response.
func recordResponse(fallback bool) {
	if fallback {
		responsesTotal.WithLabelValues(outcomeFallback).Inc()
		return
	}
	responsesTotal.WithLabelValues(outcomeKeyword).Inc()
}
