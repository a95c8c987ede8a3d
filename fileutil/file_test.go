package fileutil

import (
	"strings"
	"testing"
)

func TestHasShebang(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   []byte
		want bool
	}{
		{in: []byte("#!/usr/bin/env bash"), want: false},
		{in: []byte("#!/bin/bash"), want: false},
		{in: []byte("#!foo bar"), want: false},
		{in: []byte("#!/bin/zsh"), want: true},
		{in: []byte("#! /bin/zsh true"), want: true},
		{in: []byte("#!  /bin/zsh"), want: true},
		{in: []byte("#!\t/bin/zsh"), want: true},
		{in: []byte("#!\f/bin/zsh"), want: false},
		{in: []byte("#!/usr/bin/env zsh"), want: true},
	}

	for _, test := range tests {
		name := strings.ReplaceAll(strings.ReplaceAll(string(test.in), "\f", "\\f"), "\t", "\\t")
		t.Run(name, func(t *testing.T) {
			if got := HasShebang(test.in); got != test.want {
				t.Fatalf("want %v, got %v", test.want, got)
			}
		})
	}
}
