/*
Package iteratable implements iteratable container data structures.

Set is a speical purpose set type, suitable mainly for implementing algorithms
around LR items, item closures and the like. These kinds of algorihms are
often more straightforward to describe as set constructions and operations.

Sets are ordered by a comparator, which gives every set a canonical order of
its elements. Two sets containing the same elements will always iterate
them in the same order.

Add modifies a set in place and returns it, which allows chaining.

An iteration may be started with IterateOnce. Elements added to the set while
the iteration is running will be visited by the same iteration. This makes
worklist-style fixed-point algorithms very compact:

    C.IterateOnce()
    for C.Next() {
        x := C.Item()
        C.Add(successorsOf(x)...)  // will be visited, too
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
