// Dumps the contents of a bbolt bucket or a serialized roaring bitmap.
//
//	$ proxyiter-dump -bucket completion storage/bolt.db
//	$ proxyiter-dump -bitmap -at 3 pieces.roaring
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/anacrolix/log"
	"github.com/anacrolix/tagflag"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/anacrolix/proxyiter"
	"github.com/anacrolix/proxyiter/boltenum"
	"github.com/anacrolix/proxyiter/roaringenum"
)

var logger = log.Default.WithNames("main")

type flags struct {
	Bucket string `help:"bbolt bucket to dump"`
	Bitmap bool   `help:"the file is a serialized roaring bitmap"`
	At     int    `help:"print only the bitmap value with this rank"`
	tagflag.StartPos
	Path string
}

func main() {
	args := flags{At: -1}
	tagflag.Parse(&args, tagflag.Description("Dumps a bbolt bucket or a roaring bitmap."))
	err := run(args, os.Stdout)
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func run(args flags, w io.Writer) error {
	if args.Bitmap {
		return dumpBitmap(args, w)
	}
	if args.Bucket == "" {
		return errors.New("bucket required")
	}
	return dumpBucket(args, w)
}

func dumpBucket(args flags, w io.Writer) error {
	db, err := bbolt.Open(args.Path, 0600, &bbolt.Options{
		Timeout:  time.Second,
		ReadOnly: true,
	})
	if err != nil {
		return errors.Wrap(err, "opening db")
	}
	defer db.Close()
	return boltenum.View(db, []byte(args.Bucket), func(items proxyiter.Sequence[boltenum.Item]) error {
		var total uint64
		for item := range items.All() {
			total += uint64(len(item.Value))
			_, err := fmt.Fprintf(w, "%q: %s\n", item.Key, humanize.Bytes(uint64(len(item.Value))))
			if err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "total %s\n", humanize.Bytes(total))
		return err
	})
}

func dumpBitmap(args flags, w io.Writer) error {
	f, err := os.Open(args.Path)
	if err != nil {
		return errors.Wrap(err, "opening bitmap")
	}
	defer f.Close()
	var bm roaringenum.Bitmap[uint32]
	_, err = bm.ReadFrom(f)
	if err != nil {
		return errors.Wrap(err, "reading bitmap")
	}
	c := roaringenum.Collection(&bm)
	if args.At >= 0 {
		if args.At >= c.Count() {
			return errors.Errorf("rank %v out of range, bitmap has %v values", args.At, c.Count())
		}
		_, err = fmt.Fprintln(w, c.At(args.At))
		return err
	}
	for i, x := range c.Enumerate() {
		_, err = fmt.Fprintf(w, "%v: %v\n", i, x)
		if err != nil {
			return err
		}
	}
	return nil
}
