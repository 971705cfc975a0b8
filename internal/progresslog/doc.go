// Copyright (c) 2020 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for long walks over block
heights, such as auditing the funding schedule of a network.

## Feature Overview

  - Maintains cumulative totals about audited heights between each logging
    interval
  - Total number of heights
  - Total number of transparent recipients
  - Total number of shielded recipients
  - Total number of lockbox periods
  - Logs all cumulative data every 10 seconds
  - Logs any outstanding data immediately when forced, such as at the end of a
    walk
*/
package progresslog
