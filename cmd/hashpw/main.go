// hashpw prints the bcrypt hash of a password, for provisioning the
// SELLER_<NAME> environment variables.
//
//	go run ./cmd/hashpw -cost 10 's3cret'
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rifadigital/raffle/internal/utils"
)

func main() {
	cost := flag.Int("cost", 10, "bcrypt cost")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: hashpw [-cost N] <password>")
	}
	hash, err := utils.HashPassword(flag.Arg(0), *cost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}
	fmt.Println(hash)
}
