// Command shotsync reconciles frame-review exports against facility work
// orders. It parses Baselight and Flame export files, maps reviewed paths to
// canonical storage locations, and emits the resulting frame ranges as a CSV
// worklist or into a local database for querying and HTML report generation.
package main
