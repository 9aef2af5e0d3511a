package patterns

// DefaultPlaceholder marks where a parametric rule's captured value is
// substituted into the message template.
const DefaultPlaceholder = "{code}"

// builtinRules are the known Airflow/Spark failure signatures, in
// priority order. The order is fixed; report lines come out in this
// order regardless of where the signatures appear in the log.
var builtinRules = []Rule{
	{
		Name:    "out_of_memory",
		Expr:    `OutOfMemoryError`,
		Message: "The Spark job ran out of memory. Increase executor memory or reduce data size.",
	},
	{
		Name:    "disk_full",
		Expr:    `No space left on device`,
		Message: "The cluster does not have enough disk space. Free up space or use a larger instance.",
	},
	{
		Name:    "permission_denied",
		Expr:    `Permission denied`,
		Message: "A file or directory could not be accessed due to permission issues. Check IAM roles and file permissions.",
	},
	{
		Name:    "connection_refused",
		Expr:    `Connection refused`,
		Message: "Spark could not connect to a required service. Verify network settings and service endpoints.",
	},
	{
		Name:    "spark_exception",
		Expr:    `SparkException`,
		Message: "Spark reported a generic error. Inspect earlier log entries for a more specific cause.",
	},
	{
		Name:        "exit_status",
		Expr:        `Task failed with exit status (\d+)`,
		Message:     "A Spark task failed with exit status {code}. Review the executor logs for stack traces and memory errors.",
		Parametric:  true,
		Placeholder: DefaultPlaceholder,
	},
}

// Builtin returns the fixed built-in pattern table.
func Builtin() *Table {
	return NewTable(builtinRules)
}
