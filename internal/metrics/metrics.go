package metrics

const Namespace = "maven"
