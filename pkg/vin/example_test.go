// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin_test

import (
	"fmt"

	"github.com/AScotM/vindata/pkg/vin"
)

func ExampleIsValid() {
	fmt.Println(vin.IsValid("1HGCM82633A004352"))
	fmt.Println(vin.IsValid("1hgcm82633a004352 "))
	fmt.Println(vin.IsValid("1HGCM82633A123455"))
	// Output:
	// true
	// true
	// false
}

func ExampleExtract() {
	text := "Sold 1HGCM82633A004352 and 1HGCM82633A123455 last week."
	for _, candidate := range vin.Extract(text) {
		fmt.Println(candidate, vin.IsValid(candidate))
	}
	// Output:
	// 1HGCM82633A004352 true
	// 1HGCM82633A123455 false
}

func ExampleInspect() {
	in := vin.Inspect("1HGCM82633A123455")
	fmt.Printf("%s expected=%c actual=%c\n", in.Reason, in.Expected, in.Actual)
	// Output:
	// check-digit expected=5 actual=3
}
