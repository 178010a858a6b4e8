// Command twopoint computes two-point correlation functions of text catalogs.
//
// Usage:
//
//	twopoint xi        --data FILE [--data2 FILE] [--randoms FILE] --bins 1,2,5 [--period L]
//	twopoint jackknife --data FILE --randoms FILE --bins 1,2,5 [--period L] --nsub N [--lbox L]
//	twopoint wtheta    --data FILE [--data2 FILE] [--randoms FILE] --bins 0.1,1,10
//	twopoint estimators
//
// Every flag may also come from a config file (--config) or from a
// TWOPOINT_<FLAG> environment variable, with dashes turned into underscores.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
