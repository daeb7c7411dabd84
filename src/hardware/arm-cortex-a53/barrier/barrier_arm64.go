package barrier

func dmbSY()
func dmbISH()
func dmbISHST()
func dsbSY()
func dsbISH()
func dsbISHST()
func isbSY()
