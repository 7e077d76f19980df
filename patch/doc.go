// Package patch applies JSON Patch and JSON Merge Patch documents to
// structured values through their JSON form. Field order is preserved:
// fields the patch keeps stay where they were and new fields follow them.
package patch
